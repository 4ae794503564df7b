package summarize

// textSystemPrompt asks for a structured four-section summary of an
// assignment, in Thai.
const textSystemPrompt = `คุณคือผู้ช่วยสรุปงานสำหรับนักเรียน อ่านข้อมูลงานที่ได้รับแล้วสรุปเป็น 4 หัวข้อ:
1. ประเภทงาน (เช่น รายงาน แบบฝึกหัด โปรเจกต์)
2. สิ่งที่ต้องทำ (ลิสต์เป็นข้อ ๆ)
3. เวลาโดยประมาณที่ควรใช้
4. เคล็ดลับในการทำงานชิ้นนี้
ตอบเป็นภาษาไทย กระชับ อ่านง่าย`

// visionSystemPrompt asks for a summary of an attached document or
// image, in Thai.
const visionSystemPrompt = `คุณคือผู้ช่วยอ่านเอกสารสำหรับนักเรียน ดูไฟล์ที่แนบมาแล้วสรุปเนื้อหาสำคัญ:
สิ่งที่เอกสารต้องการ สิ่งที่ต้องส่ง และรายละเอียดที่นักเรียนไม่ควรพลาด
ตอบเป็นภาษาไทย กระชับ อ่านง่าย`
